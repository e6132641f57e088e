package sqlinline

const QListActiveCampaigns = `--sql 9e4a7c2d-6b1f-48e3-a5d9-2f7c0b8e4a16
select id, title, description, target_amount, raised_amount, image_url, is_active, created_at
from campaigns
where is_active
order by created_at desc;
`

const QInsertCampaign = `--sql 5b3d9f1a-7e2c-4a68-b0d4-1c8f6a3e9d57
insert into campaigns (id, title, description, target_amount, raised_amount, image_url, is_active, created_at)
values (gen_random_uuid(), $1::text, $2::text, $3::bigint, 0, $4::text, true, now())
returning id, created_at;
`

const QSelectActiveCampaign = `--sql c7e1a5d9-3f8b-42c6-9a0e-6d4b2f7c1e83
select id
from campaigns
where id = $1::uuid and is_active
limit 1;
`

// The raised total is maintained exclusively by this field-level increment;
// it is never recomputed from donation rows in the request path.
const QIncrementCampaignRaised = `--sql 2a8c6e4f-9d1b-47a3-8e5c-0f3d7b9a2c61
update campaigns
set raised_amount = raised_amount + $2::bigint
where id = $1::uuid;
`
